package tpcc

import (
	"strings"
	"testing"

	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
)

const itemGolden = `
0,4474,36KCyYo8Nd5nosWSKlp,86.6,8cYB0av5swrQzbPWviBQwuAYNgf5lUlik7F
1,1819,7gzsS2KDKllWMEoYRkt,69.45,9D5kSdAWfHUOAB2Gl3LwFECk7qU3hiWBlI0bp858oClbgOmYa
2,7525,2vKZhcDjzacLvE6M,1.58,HbVdRbBRLrsUp3DhyPdHhJcoYtp35aAKujayvYTGQLL9T2v1G
3,8297,jjEQL74tbVro5HcPFI,50.7,LBbteuf5ojxhpiMaCzsZJpZXGcUFPwnt8GRiwg2
4,6376,8UlUTTvloLlDClBPr,24.21,jBQU31gguFTKd1d2kEzFptORIGINALPyY1eO
5,7328,GUVwvlyCHTZhVFk4mPC2LN,70.05,2W62CDCewC6vYLnuORIGINALLnRwJ
6,8973,sMvn1jd5VK8jK9Ni7umSYnrp,3.3,mOzeedy9wAzlu79UHYLlvermqUP5AIAeRuPI443rKD
7,3140,VGglQvwCvy1dFUNrvW,14.22,0TPu96ClKUlXmMLMAEikD5HRAR8wu5Y2ScmRJVrqGVo5mN5e
8,4536,kvYqRPNG6nXiLoLLm,64.03,5mZndv0q5oCcLLavZXet9BSBMrNdL
9,9304,rxezJzS09P4gPZ,11.33,x7NnnKv33ihS2dt3nYp8rEc3LIoU
`

const warehouseGolden = `
0,B8C36KCy,o8Nd5nosWSKlp1y38cY,av5swrQzbPWviBQwuAY,f5lUlik7FLM,Ec,160811111,0.165,300000.0
`

const stockGolden = `
0,0,50,B8C36KCyYo8Nd5nosWSKlp1y,38cYB0av5swrQzbPWviBQwuA,YNgf5lUlik7FLMEchyOd0ZyA,1W66M9UHzjFp8pT1VwvZvqQ3,WQTxLfCinHti9W2Gjn6E6FfO,0,0,0,wraprwZeyMtcyxC926RhPhp8eJ32UKwNkxgqjPHLeLcWV2x
1,0,13,lvD7gzsS2KDKllWMEoYRktQ5,fu9D5kSdAWfHUOAB2Gl3LwFE,Ck7qU3hiWBlI0bp858oClbgO,mYa1aB1AnbvDA9VKRKEk2kWm,BUTue9JKcQpSqsByKKNEkF9b,0,0,0,hU9YrhMQikeZo8LpieGmPonpKllz
2,0,78,n2vKZhcDjzacLvE6MhKa6mHb,VdRbBRLrsUp3DhyPdHhJcoYt,p35aAKujayvYTGQLL9T2v1G6,lSXd72FUY1wuChJFZ6RPX7PH,4qmt0uC6gLzPPNBvdvZQ9UtS,0,0,0,Rh0NsLzAGF6DHdHQRnGuLfklcyZ77ItEtLH
3,0,55,ZzjjEQL74tbVro5HcPFIFmHL,Bbteuf5ojxhpiMaCzsZJpZXG,cUFPwnt8GRiwg2DD64I6just,e7Ua9zmnMOy2wjWD2TdAEIjw,aVkPhhGq9zdGEVdMfyXvhdtN,0,0,0,CtwSKkyFaMzXbZHzohQfRY871LZ
4,0,68,s8UlUTTvloLlDClBPrgoAaJY,jBQU31gguFTKd1d2kEzFptPy,Y1eOnd2DFOVpYDQuTT8Z4pS0,1hBHkKo2wpLWS7Zr0VxR6FJS,lJJnmNMyV1519ppMx22m7u5y,0,0,0,J9PnRK3mLsuaaqG3BOM2uUjvr74E3ZtjjtrfiFeSXfW93s1
5,0,76,RSvMwUGUVwvlyCHTZhVFk4mP,C2LNRidV2W62CDCewC6vYLnu,LnRwJ3Fum2KVdzN4TidDdaOL,9duEjx0JqFZ4xNieK3oPQoES,ne6YjO1kmQ7KOEtxlGbcDWOu,0,0,0,XNieVQBrgbB9PIGmEtbNh4eefHvB91leDIiHKqDo
6,0,91,8sMvn1jd5VK8jK9Ni7umSYnr,pB7AbPpmOzeedy9wAzlu79UH,YLlvermqUP5AIAeRuPI443rK,DZDgvJUDzNExDMb9IoU1tZRB,c4BoB8mFSoSn7M1Emyllrs18,0,0,0,rD0YPgpXJ89TAJp9iLmORIGINALrbI0WPmHxoowN
7,0,98,tBqzVGglQvwCvy1dFUNrvWhi,93z0TPu96ClKUlXmMLMAEikD,5HRAR8wu5Y2ScmRJVrqGVo5m,N5eETrVjM3giLrkHaGfCxHwV,46ZpHIYmUfyFM6YVqP3gJSE3,0,0,0,LHpXDxcPcvblgakURqop96sxJv7rHDw2iQbo2s0Y904h
8,0,51,ukvYqRPNG6nXiLoLLmNh5mZn,dv0q5oCcLLavZXet9BSBMrNd,LJ6uFQUc6x1bCWDrIWgPabtA,fKZTnpMLLJ1tzNIfJDwdOBq3,64susL6xxAP8klRTT3AeOpQr,0,0,0,fO124sUxQwUsZxex23MWkIwToDx7PtfCr
9,0,94,drxezJzS09P4gPZsngfJ1x7N,nnKv33ihS2dt3nYp8rEc3LIo,U3Gj1YBj7RLKs9NgedUWtTgE,iZcVGOj70c9jOu00xav0T6sj,nN2Qu9Xpyru4T4GOtX4B0CIb,0,0,0,AfITIqfvdBKArVcJcerAEPsgrHMY
`

const districtGolden = `
0,0,B8C36KCy,o8Nd5nosWSKlp1y38cY,av5swrQzbPWviBQwuAY,f5lUlik7FLM,Ec,160811111,0.165,300000.0,3001
1,0,clvD7gzsS,2KDKllWMEoYRktQ5,u9D5kSdAWfH,OAB2Gl3LwFECk7qU3h,iW,458011111,0.0497,300000.0,3001
2,0,2vKZhcD,zacLvE6MhKa,mHbVdRbBRLrsUp3DhyPd,JcoYtp35aAK,uj,038711111,0.104,300000.0,3001
3,0,ZzjjEQL7,tbVro5HcPFIFmHLBbteu,5ojxhpiMaCzsZJpZXGcU,Pwnt8GRiwg2DD64,I6,133311111,0.0146,300000.0,3001
4,0,s8UlUTTvl,LlDClBPrgoAa,YjBQU31gguFTKd1d,2kEzFptPyY1eO,nd,562811111,0.0963,300000.0,3001
5,0,SvMwUGUVw,CHTZhVFk4mPC2L,idV2W62CDCewC6vYL,uLnRwJ3Fum2K,Vd,469711111,0.1225,300000.0,3001
6,0,8sMvn1jd5V,8jK9Ni7umSYnrpB7,bPpmOzeedy9wAz,lu79UHYLlv,er,794511111,0.0862,300000.0,3001
7,0,BqzVGgl,vwCvy1dFUNrvWhi93,0TPu96ClKUlXmM,MAEikD5HRAR8wu5Y,2S,072511111,0.1519,300000.0,3001
8,0,ukvYqRPN,6nXiLoLLmNh5mZn,v0q5oCcLLa,ZXet9BSBMrNdLJ6uFQU,c6,805111111,0.1345,300000.0,3001
9,0,5drxez,zS09P4gPZsngfJ1x,NnnKv33ihS2dt3nYp8rE,3LIoU3Gj1Y,Bj,636111111,0.0135,300000.0,3001
`

const customerGolden = `
0,0,0,BARBARBAR,OE,B8C36KCyYo8N,5nosWSKlp1,38cYB0av5swrQz,PWviBQwuAY,Ng,917711111,zjFp8pT1VwvZvqQ3WQTxLfCinHti9W2Gjn6E6FfOyS45mclf2SdR2VE74XhqI7H5qbx3QXhIEF3TCOTqSrkfnpS39JBXj8yvQUR01qjsVQPe9OqETxOFniELGm1QxpZ458gjEwZe4PXray0VaJvLIwJwTsNA2hGK1VwraprwZeyMtcyxC926RhPhp8eJ32UKwNkxgqjPHLeLcWV2xOQ3c26yJyc1gpTKjO7TLspvMulCx1QgX1eWhAQrmFY0NTQf9CHFCGoHXDqprpjNxk4rQFpvHeCFkzL0obtjYpNHuSB9vmOlDG4Cg0CLIGcSLKQOiPEocxwYWsN6bJDv8YiOHKWtkm9eCW6HgMd3EXIlwYnxX28to85WvwrKMptdY4LI5iRYqVVNuJYZooQBbKVXtls
1,0,0,BARBAROUGHT,OE,clvD7gzsS2KDKl,MEoYRktQ5fu9D5kSdA,fHUOAB2Gl3LwFECk7q,3hiWBlI0bp858oClbg,Om,808011111,ByKKNEkF9bTAvOIXcEcevimYbtLGjFr0u22aYxm0dLcWf0nA3N7omkH1d0TITXmFMu8GAFYj54wXooxJANI8SaUBXUzBI0m08cs5n7971KT9lsCC2xUDDSSNPskaXdd6JpIg6hU9YrhMQikeZo8LpieGmPonpKllzEtEcaRQJSYFswbm09w8tuSuIwzFFW2DvkiZBrRclEGDcqgkJs1Jdd3bpdUVgpblAzJqLzRzV2oiMiAXGxz0oqWjGfcn0qX4DIlVlg6VUxR5fOKYOBEWcKu7k2Hg3AiPFb654qcHKV8zVWqXcArtsd6PlTBMoXr3VP3aoD01kf7jAsPb8THJ5tVQOki3AECrijMADF
2,0,0,BARBARABLE,OE,2vKZhcDjza,LvE6MhKa6m,VdRbBRLrsU,hyPdHhJcoYtp35a,AK,310311111,uChJFZ6RPX7PH4qmt0uC6gLzPPNBvdvZQ9UtSF5PdHHqUxIOEQhhPBIx7dUCpuNNpSQ09RTQJMcnPcyjmQ1Vq77eg5IbjpxKH8V9AJ0cm3aHqojTS2T85nhzK5sMCvNDDj8ensgVAyympZGHyWqCqyeOVZ4KuwyoRh0NsLzAGF6DHdHQRnGuLfklcyZ77ItEtLHRL9AH2vPyHAbZcfbtUpQYyoU3LuqRTEDGC7l1HRE0m2cYgPiNTcL637Ln4BXNc9Zb7hk5WSVV0AYZ3rLB2wCs2t6yNyiLzv1PSWCvecu0gkSt4Ggvjr8otegp9iSQfT16THQmKegXQqaRQbmajHr2yLp662AMgWZmg09Mq6dQjcBZzARaTO
3,0,0,BARBARPRI,OE,ZzjjEQL74tbV,o5HcPFIFmHLBb,euf5ojxhpiMaC,sZJpZXGcUFPwnt,8G,711911111,EIjwaVkPhhGq9zdGEVdMfyXvhdtNHTHB2LwGm5tc5oL1P4laV5ouxlYuSLQdYOrnD7FbL9YL9DB2C2ATmngGTjqa9cOwIaO79WkHGbJX5gnnAPuevywPBc5IM2gyrQL38RTtilVd7LXM716FxUt2e1LCtwSKkyFaMzXbZHzohQfRY871LZzaKAUINJoDpigjEGY0CnywS3H6sX1oaLEq7WAvkVKfEUpu6NGNosjMEWLIiIsCr3eEOHGlZrJ0rKErmrApIwIaBU3MyLrqLDIeysH7iPav5GoABro6ZI9YiurziNaG8EVC5XIZkdEOV7520TebvQQRfZSE4bdI4TbJQcThioq8QW8feZRZxdvZkM0plSZlf2lXoJTiFeDPJG5U5IQ
4,0,0,BARBARPRES,OE,loLlDClBPrg,AaJYjBQU31gg,FTKd1d2kEzFpt,yY1eOnd2DFOVpYDQu,TT,892711111,JnmNMyV1519ppMx22m7u5ypMArRXISVyQUbuGHHsdz7jGYjQ2FbhUzg0jrEkX00PK5I9Pk773jJEg7aCTFngXsyuGIhLDndKfI3ttAZIngi2xvhcNcdiW3qmcCaQItJQ2XUYCagncv3vFX1PfnJ9PnRK3mLsuaaqG3BOM2uUjvr74E3ZtjjtrfiFeSXfW93s1QKpTZIyA07TeqgfYHuAn2CRnSIWI7Dw0eaPtP75lrBSYIMxFFkqg7hsYi1zrN9wRrm0XKn3TKrxIshPRjXy9uU3CPeTcrKNzd1p4hcH5VLjQ2syDizVBk4tY5DljRGlgKFw0jAyZUsJYKAicMWEsENOgnMmygvVaQTSjNnP7k03cbeO3IVGIJPZaOTY4dqdDzrumMtZAf6gAYuLyNhQ15gw9gvc5
5,0,0,BARBARESE,OE,SvMwUGUVwvlyCH,hVFk4mPC2LNRidV2W62,DCewC6vYLnuLnRw,3Fum2KVdzN4TidDd,aO,603111111,EtxlGbcDWOuV5myu4dx2kCUaWlh3qkRHW2mXuVfL6jQgmhW4smROo6uPftvDEytRL5S6QGgbJe66Z6C1kR4xXVHBvd9moIKgw7EBqe92Owo1G31vZUNJ7c2t1OnXbEtuq9UKqXNieVQBrgbB9PIGmEtbNh4eefHvB91leDIiHKqDoJxxJR7Z5nNA62hi571uAzr2IcTOusVYDMLb141hUe8ZkqFTsmEJ5ky2hBNbaq6jGG60lhlT8lhq5N00IW5TztiE31ET7yUYJmp9SZ9hVc91MozPfDOCeDrCrClqjjmwssfA2eT8MOYroStMoIYJl5D9pZWLNQ0d9bXl09ryfrRlKFvul2o69HQ1a0Yy3ed2QM17d1vGBcBk1hJ0TnCcbGW13hYVGQ4WH0XgrAJNnmwKwWrQzGJ23QbKbUBafFi8HK9
6,0,0,BARBARANTI,OE,8sMvn1jd5VK8jK9N,7umSYnrpB7A,PpmOzeedy9,zlu79UHYLlverm,qU,945411111,RBc4BoB8mFSoSn7M1Emyllrs187hAFnGJRpYm5qDYKHD4be0a1EqT6yUqPivJL00kr6zZ78TiByQbqW1u5RXdOUELmtAPoJnpgdXJZcFUDeANVzUV585nFWgLyzSzqgLmdj4of6kcoUFl5G1QcKaLrD0YPgpXJ89TAJp9iLmrbI0WPmHxoowNoJFNcgMj8NjKBa2mSJio8HDs1LLAcW1EuKUbGPQgXWbYblhgrHRAzM4F0PpAXksKdU5e9eIef5K6JTYdXBvjFDhvVEFTZlzAkGSnSWJlnEl7FP8OZRh7FsTktPKRL6uiUEQm4rzJkkyO4wUJC3JsNTn0gKwMN4eu2EcP98gRsv2rYsvCzIUHubm87TUD1AsjN3lI4Sa9WUzUkjKvO9mBkm9j5pEJu2MftR1fPHBaw28rndLqzWeZlzd5eh8oG2bP5j7CR7n1E7tdlCwZnnZn094gXHd6W
7,0,0,BARBARCALLY,OE,zVGglQvwCv,1dFUNrvWhi93z0,Pu96ClKUlXmMLMAEik,5HRAR8wu5Y2ScmR,JV,257211111,pHIYmUfyFM6YVqP3gJSE3v5MeUB4vhBLGryVQxcPDXwzKamOChm3yjhtCN234fLX9r31q8xOXViRiSFWcRtVcqwpwoIhEyoPdedR9U3YIRXVYCEUXKfMg0MPlIZtU99H6kKLiodjagHdMU8iLHpXDxcPcvblgakURqop96sxJv7rHDw2iQbo2s0Y904hmGnIhBl1C7qkGkgkjXh1SaHmEJe0hX7HJcymWwFsxCtkIr2zcqPCrqf98dhru9avVz9v8wUdlQxyt93BzHdyzv25iDT2bT76YY4wCBLvWWIsq8HF35bAVz70PWBWuIIsG7ajlAzLPrrbNyaRLlQdd7SSzgSrHvqnFnfdlgBnifFEy5zCr3dvFc5lqSd3nOHvqtGaqLKFOKGvGglL236VPJeEmROgy9tFqwO1JNh50prY5rt5ykxgiAFnxnf5hzBGfaqvUTNDY9dcaXmgzy70sI
8,0,0,BARBARATION,OE,ukvYqRPNG6nX,LoLLmNh5mZn,v0q5oCcLLa,ZXet9BSBMrNdLJ6uFQU,c6,805111111,64susL6xxAP8klRTT3AeOpQr55EZZSMN3KBB8UPsqoNhD3l9zEY4jX0CIil74gs07hfz4dy9S9Pj3DtXPas43cU8yEE8hXKFieH5Embcv1pNyWZcivxfCJAo7m3QPtl5X3RkZIFpYNh4wC8etkfO124sUxQwUsZxex23MWkIwToDx7PtfCriliGNDeDjNTtdCQaHVephWcstpCL3EvmVEnEOUyje3wHFPnl45cECWdttPTLrnQ7T6FdPICcaQmIOWimXdjS6lD169foDWD8MeJljuztXtW6cJAU6MYnZAwvtdovGndP97TBrSdeBNV1VydS51B5bWiU8o8GrP1yS0T1hfzqjbOhNHBXgVDc8gvyz8SZZdUwSWh9HdLVpRuotUhVD8NHP6nwPk94ow8kgKmHKiuPm7l48YQSPUPGlH7OMXLkgqnsedLD8DZiLfzRP0EYdmri4Kj68AcNrmHFEslUkPVybHa
9,0,0,BARBAREING,OE,5drxezJz,9P4gPZsngfJ1x7NnnKv,hS2dt3nYp8r,c3LIoU3Gj1YBj7R,LK,361011111,xav0T6sjnN2Qu9Xpyru4T4GOtX4B0CIbR1LETQvgwJh6aVUvHRyBMknjqWGuarKWjlK1hZLu5TFoSdtXfcoMQDZ22kuqjmCHsNDY2YgOEXMuiI6Jcqulin7Om3rdtgMT4P8kPX3XcMSxgCjY53umYeqifuAfITIqfvdBKArVcJcerAEPsgrHMYKkDNVrpMS0AcNESHHjIMV7XeQ1dFM6WccVJnkRqq5LmYRWQle3V6hj1HrumuZUAWtLTZaXHMmCvobB6YIaPuCHYBkIl4nkVjCz8UZFWk3wwfgORr34pxvX9MxttkjCmgusa55wKTffr11WiqIx35OmIXqjbjk6YN1uxQpDmA41C7opqkXhAZjls2cqG4iJFsQg2mnX4oO5SLxVS8gMmVfTYCfRKyfwG7kREGZ3eAXIDfdqyhVkibKUU3nCul3mVqs8IUhnOqKiWs1fJCKU9iFe2vTCF20Smn
`

const historyGolden = `
0,0,0,0,0,193157564249808,10.0,8C36KCyYo8Nd5nosW
1,0,0,0,0,193157564249808,10.0,clvD7gzsS2KDKllWMEoYR
2,0,0,0,0,193157564249808,10.0,n2vKZhcDjzacLvE6MhKa6
3,0,0,0,0,193157564249808,10.0,ZzjjEQL74tbVro5HcP
4,0,0,0,0,193157564249808,10.0,s8UlUTTvloLlDClBPrgo
5,0,0,0,0,193157564249808,10.0,RSvMwUGUVwvlyCHTZhVFk
6,0,0,0,0,193157564249808,10.0,8sMvn1jd5VK8jK9Ni7umSYn
7,0,0,0,0,193157564249808,10.0,tBqzVGglQvwCvy1dFUNrvWhi
8,0,0,0,0,193157564249808,10.0,kvYqRPNG6nXiLoLL
9,0,0,0,0,193157564249808,10.0,5drxezJzS09P
`

const orderGolden = `
0,2214,0,0,193157564249808,5,10,1
1,2732,0,0,193157564249808,2,5,1
2,785,0,0,193157564249808,7,13,1
3,2122,0,0,193157564249808,3,10,1
4,1597,0,0,193157564249808,9,12,1
5,1879,0,0,193157564249808,5,13,1
6,1293,0,0,193157564249808,5,15,1
7,1684,0,0,193157564249808,5,15,1
8,2782,0,0,193157564249808,7,8,1
9,2902,0,0,193157564249808,10,5,1
`

const orderLineGolden = `
0,0,0,0,58815,0,193157564249808,5,4563.720543686956,yYo8Nd5nosWSKlp1y38cYB0a
0,0,0,1,34601,0,193157564249808,5,9324.527574856582,swrQzbPWviBQwuAYNgf5lUli
0,0,0,2,17637,0,193157564249808,5,9605.969006727235,FLMEchyOd0ZyA1W66M9UHzjF
0,0,0,3,25017,0,193157564249808,5,9811.476349652017,pT1VwvZvqQ3WQTxLfCinHti9
0,0,0,4,78055,0,193157564249808,5,8732.291209534731,Gjn6E6FfOyS45mclf2SdR2VE
0,0,0,5,96622,0,193157564249808,5,9085.943936094973,XhqI7H5qbx3QXhIEF3TCOTqS
0,0,0,6,28701,0,193157564249808,5,1651.206286390627,fnpS39JBXj8yvQUR01qjsVQP
0,0,0,7,6833,0,193157564249808,5,9936.605085283258,OqETxOFniELGm1QxpZ458gjE
0,0,0,8,36372,0,193157564249808,5,8350.31735063976,e4PXray0VaJvLIwJwTsNA2hG
0,0,0,9,76034,0,193157564249808,5,3684.5330644108262,raprwZeyMtcyxC926RhPhp8e
`

const newOrderGolden = `
2100,0,0
2101,0,0
2102,0,0
2103,0,0
2104,0,0
2105,0,0
2106,0,0
2107,0,0
2108,0,0
2109,0,0
`

var testConfig = Config{Warehouses: 1, Now: Feb182023At1PM}

func relations(t *testing.T, config Config) map[string]dataset.Relation {
	t.Helper()
	rels := make(map[string]dataset.Relation)
	New(config).Tables(func(r dataset.Relation) {
		rels[r.Name()] = r
	})
	return rels
}

func render(r dataset.Relation, n int) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, row := range dataset.Head(r, n) {
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(dataset.Text(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestGoldenRows(t *testing.T) {
	rels := relations(t, testConfig)
	cases := []struct {
		name string
		want string
	}{
		{"item", itemGolden},
		{"warehouse", warehouseGolden},
		{"stock", stockGolden},
		{"district", districtGolden},
		{"customer", customerGolden},
		{"history", historyGolden},
		{"order", orderGolden},
		{"order-line", orderLineGolden},
		{"new-order", newOrderGolden},
	}
	for _, c := range cases {
		r, ok := rels[c.name]
		if !ok {
			t.Fatalf("missing relation %q", c.name)
		}
		if got := render(r, 10); got != c.want {
			t.Fatalf("%s mismatch\n got: %s\nwant: %s", c.name, got, c.want)
		}
	}
}

func TestRelationOrderAndBatchCounts(t *testing.T) {
	var names []string
	var counts []int
	for _, d := range dataset.DynTables(New(Config{Warehouses: 2, Now: Feb182023At1PM})) {
		names = append(names, d.Name())
		counts = append(counts, d.NumBatches())
	}
	wantNames := []string{"item", "warehouse", "stock", "district", "customer", "history", "order", "order-line", "new-order"}
	wantCounts := []int{100_000, 2, 200_000, 20, 60_000, 60_000, 20, 60_000, 18_000}
	if strings.Join(names, ",") != strings.Join(wantNames, ",") {
		t.Fatalf("unexpected relation order: %v", names)
	}
	for i := range wantCounts {
		if counts[i] != wantCounts[i] {
			t.Fatalf("%s: got %d batches, want %d", names[i], counts[i], wantCounts[i])
		}
	}
}

func TestZeroWarehouses(t *testing.T) {
	for _, d := range dataset.DynTables(New(Config{Now: Feb182023At1PM})) {
		want := 0
		if d.Name() == "item" {
			want = NumItems
		}
		if d.NumBatches() != want {
			t.Fatalf("%s: got %d batches, want %d", d.Name(), d.NumBatches(), want)
		}
	}
}

func TestBatchPastEndIsEmpty(t *testing.T) {
	for name, r := range relations(t, testConfig) {
		b := r.NewBatch()
		r.GenBatch(0, b)
		if b.Len() == 0 {
			t.Fatalf("%s: batch 0 is empty", name)
		}
		r.GenBatch(r.NumBatches(), b)
		if b.Len() != 0 {
			t.Fatalf("%s: batch past end has %d rows", name, b.Len())
		}
	}
}

func TestCustomerShuffleIsBijection(t *testing.T) {
	o := NewOrder(testConfig)
	batch := o.NewBatch()
	for d := 0; d < o.NumBatches(); d++ {
		o.GenBatch(d, batch)
		if batch.Len() != NumOrdersPerDistrict {
			t.Fatalf("district %d: %d orders", d, batch.Len())
		}
		seen := make([]bool, NumCustomersPerDistrict)
		for i := 0; i < batch.Len(); i++ {
			row := batch.Get(i)
			if row.V0 != uint64(i) || row.V2 != uint64(d) {
				t.Fatalf("district %d row %d: unexpected ids %d/%d", d, i, row.V0, row.V2)
			}
			if seen[row.V1] {
				t.Fatalf("district %d: customer %d assigned twice", d, row.V1)
			}
			seen[row.V1] = true
			if row.V5.Valid != (i < firstNewOrder) {
				t.Fatalf("district %d order %d: carrier presence %v", d, i, row.V5.Valid)
			}
			if row.V5.Valid && (row.V5.Value < 1 || row.V5.Value > 10) {
				t.Fatalf("carrier %d out of range", row.V5.Value)
			}
		}
	}
}

func TestOrderLineCountMatchesOrder(t *testing.T) {
	cfg := Config{Warehouses: 1, Now: Feb182023At1PM}
	o := NewOrder(cfg)
	ol := NewOrderLine(cfg)
	orders := o.NewBatch()
	lines := ol.NewBatch()
	for _, d := range []int{0, 4, 9} {
		o.GenBatch(d, orders)
		for _, oID := range []int{0, 1, 2099, 2100, 2999} {
			ord := orders.Get(oID)
			ol.GenBatch(d*NumOrdersPerDistrict+oID, lines)
			if uint64(lines.Len()) != ord.V6 {
				t.Fatalf("order %d/%d: o_ol_cnt %d, %d lines", d, oID, ord.V6, lines.Len())
			}
			for n := 0; n < lines.Len(); n++ {
				line := lines.Get(n)
				if line.V0 != uint64(oID) || line.V1 != uint64(d) || line.V3 != uint64(n) {
					t.Fatalf("order %d/%d line %d: unexpected keys %+v", d, oID, n, line)
				}
				if line.V6.Valid != (oID < firstNewOrder) {
					t.Fatalf("order %d/%d: delivery presence %v", d, oID, line.V6.Valid)
				}
				if !line.V6.Valid && line.V8 != 0 {
					t.Fatalf("undelivered line has amount %v", line.V8)
				}
			}
		}
	}
}

func TestNewOrderMatchesUndeliveredOrders(t *testing.T) {
	n := NewNewOrder(Config{Warehouses: 2, Now: Feb182023At1PM})
	b := n.NewBatch()
	for _, idx := range []int{0, 899, 900, 17_999} {
		n.GenBatch(idx, b)
		row := b.Get(0)
		if row.V0 < firstNewOrder || row.V0 >= NumOrdersPerDistrict {
			t.Fatalf("new-order %d: o_id %d outside the undelivered window", idx, row.V0)
		}
		if row.V1 != uint64(idx/NumNewOrdersPerDistrict) || row.V2 != row.V1/NumDistrictsPerWarehouse {
			t.Fatalf("new-order %d: unexpected district/warehouse %d/%d", idx, row.V1, row.V2)
		}
	}
}

func TestGenerationIsIndexPure(t *testing.T) {
	for name, r := range relations(t, testConfig) {
		last := r.NumBatches() - 1
		a, b := r.NewBatch(), r.Fork().NewBatch()
		r.GenBatch(last, a)
		r.GenBatch(0, a)
		fork := r.Fork()
		fork.GenBatch(0, b)
		if a.Len() != b.Len() {
			t.Fatalf("%s: lengths differ %d vs %d", name, a.Len(), b.Len())
		}
		for i := 0; i < a.Len(); i++ {
			ra, rb := a.AppendRow(i, nil), b.AppendRow(i, nil)
			for j := range ra {
				if dataset.Text(ra[j]) != dataset.Text(rb[j]) {
					t.Fatalf("%s row %d field %d: %v vs %v", name, i, j, ra[j], rb[j])
				}
			}
		}
	}
}

func TestGoodBytes(t *testing.T) {
	w := NewWarehouse(testConfig)
	b := w.NewBatch()
	w.GenBatch(0, b)
	// w_id, two floats, and the strings of the golden row.
	want := 8 + 8 + 8 + 6*8 + len("B8C36KCy") + len("o8Nd5nosWSKlp1y38cY") +
		len("av5swrQzbPWviBQwuAY") + len("f5lUlik7FLM") + len("Ec") + len("160811111")
	if got := b.GoodBytes(); got != want {
		t.Fatalf("got %d good bytes, want %d", got, want)
	}
}

func TestDateTimes(t *testing.T) {
	if got := Feb182023At1PM.Uint64(); got != 193157564249808 {
		t.Fatalf("unexpected packed value %d", got)
	}
	c := NewDateTimes(2)
	c.Push(Feb182023At1PM)
	c.Push(DateTime{Date: 1, Time: 2})
	if c.Len() != 2 || c.GoodBytes() != 16 {
		t.Fatalf("unexpected len/good bytes %d/%d", c.Len(), c.GoodBytes())
	}
	if c.Get(0) != Feb182023At1PM || c.Get(1) != (DateTime{Date: 1, Time: 2}) {
		t.Fatalf("unexpected values %+v %+v", c.Get(0), c.Get(1))
	}
	if c.vals[1] != 1|2<<32 {
		t.Fatalf("unexpected layout %#x", c.vals[1])
	}
	if got := col.Project(col.Some(Feb182023At1PM)); got != uint64(193157564249808) {
		t.Fatalf("unexpected projection %v", got)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatal("expected empty column after Clear")
	}
}

func TestLastName(t *testing.T) {
	cases := map[int]string{
		0:   "BARBARBAR",
		1:   "BARBAROUGHT",
		371: "PRICALLYOUGHT",
		999: "EINGEINGEING",
	}
	for n, want := range cases {
		if got := string(appendLastName(nil, n)); got != want {
			t.Fatalf("appendLastName(%d) = %q, want %q", n, got, want)
		}
	}
}
